package site

const installPage = `<!DOCTYPE html>
<html lang="pt-br">
<head>
    <meta charset="utf-8">
    <title>Instalação Offline - Cadastro Rural</title>
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body { font-family: sans-serif; max-width: 500px; margin: 2rem auto; }
        .btn { display: inline-block; padding: 1rem 2rem; background: #1976d2; color: #fff; border-radius: 8px; text-decoration: none; font-size: 1.2rem; margin-top: 2rem; }
    </style>
</head>
<body>
    <h1>Instalação Offline</h1>
    <p>Para usar o sistema sem internet, baixe o pacote abaixo e extraia no seu dispositivo.</p>
    <a class="btn" href="/download">Baixar pacote offline (.zip)</a>
    <h2>Como usar:</h2>
    <ol>
        <li>Baixe e extraia o arquivo ZIP no seu celular/tablet.</li>
        <li>Abra o arquivo <b>index.html</b> usando o navegador.</li>
        <li>Adicione à tela inicial para instalar como aplicativo.</li>
    </ol>
    <p>Pronto! O sistema funcionará totalmente offline.</p>
</body>
</html>
`
